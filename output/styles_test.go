package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	if styles == nil {
		t.Fatal("NewStyles should return non-nil Styles")
	}

	if styles.output == nil {
		t.Error("Styles should have non-nil output")
	}
}

func TestStylesSuccess(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Success("books balanced")

	// Should contain the message
	if !strings.Contains(result, "books balanced") {
		t.Errorf("Success() result should contain message, got: %s", result)
	}
}

func TestStylesError(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Error("unbalanced transaction")

	// Should contain the message
	if !strings.Contains(result, "unbalanced") {
		t.Errorf("Error() result should contain message, got: %s", result)
	}
}

func TestStylesHeader(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Header("ASSETS")

	if !strings.Contains(result, "ASSETS") {
		t.Errorf("Header() result should contain text, got: %s", result)
	}
}

func TestStylesAccount(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Account("Loans Receivable")

	// Should contain the account name
	if !strings.Contains(result, "Loans Receivable") {
		t.Errorf("Account() result should contain account, got: %s", result)
	}
}

func TestStylesAmount(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Amount("35000.00")

	// Should contain the amount
	if !strings.Contains(result, "35000.00") {
		t.Errorf("Amount() result should contain amount, got: %s", result)
	}
}

func TestStylesDim(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Dim("dimmed text")

	// Should contain the text
	if !strings.Contains(result, "dimmed text") {
		t.Errorf("Dim() result should contain text, got: %s", result)
	}
}

func TestStylesWarning(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	result := styles.Warning("abnormal balance")

	// Should contain the message
	if !strings.Contains(result, "abnormal") {
		t.Errorf("Warning() result should contain message, got: %s", result)
	}
}

func TestStylesOutput(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	output := styles.Output()

	if output == nil {
		t.Error("Output() should return non-nil termenv.Output")
	}
}
