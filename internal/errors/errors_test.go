package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrMalformedBoard", ErrMalformedBoard, ErrMalformedBoard},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoSolution", ErrNoSolution, ErrNoSolution},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load board: %w", ErrMalformedBoard)

	if !errors.Is(wrapped, ErrMalformedBoard) {
		t.Errorf("errors.Is(wrapped, ErrMalformedBoard) = false, want true")
	}
}

// TestBoardError_Error verifies the error message format
func TestBoardError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *BoardError
		contains []string
	}{
		{
			name: "full context",
			err: &BoardError{
				Err:  ErrMalformedBoard,
				File: "boards/english.txt",
				Row:  3,
				Col:  7,
			},
			contains: []string{"boards/english.txt", "row 3", "column 7", "malformed board"},
		},
		{
			name: "row only",
			err: &BoardError{
				Err: ErrMalformedBoard,
				Row: 2,
				Col: -1,
			},
			contains: []string{"row 2", "malformed board"},
		},
		{
			name: "no location",
			err: &BoardError{
				Err: ErrMalformedBoard,
				Row: -1,
				Col: -1,
			},
			contains: []string{"malformed board"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("BoardError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestBoardError_Unwrap verifies that BoardError properly implements Unwrap
func TestBoardError_Unwrap(t *testing.T) {
	boardErr := &BoardError{
		Err:  ErrMalformedBoard,
		File: "test.txt",
		Row:  -1,
		Col:  -1,
	}

	unwrapped := errors.Unwrap(boardErr)
	if !errors.Is(unwrapped, ErrMalformedBoard) {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, ErrMalformedBoard)
	}

	if !errors.Is(boardErr, ErrMalformedBoard) {
		t.Error("errors.Is(boardErr, ErrMalformedBoard) = false, want true")
	}
}

// TestBoardError_As verifies that errors.As works with BoardError
func TestBoardError_As(t *testing.T) {
	boardErr := &BoardError{
		Err:  ErrMalformedBoard,
		File: "custom.txt",
		Row:  5,
		Col:  0,
	}

	// Wrap it further
	wrapped := fmt.Errorf("loading puzzle: %w", boardErr)

	var extractedErr *BoardError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract BoardError")
	}

	if extractedErr.Row != 5 {
		t.Errorf("extractedErr.Row = %d, want 5", extractedErr.Row)
	}
	if extractedErr.File != "custom.txt" {
		t.Errorf("extractedErr.File = %q, want %q", extractedErr.File, "custom.txt")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil, ...) should return nil")
	}

	wrapped := Wrap(ErrIllegalMove, "applying move")
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), "applying move") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil, ...) should return nil")
	}

	wrapped := Wrapf(ErrNoSolution, "board %q", "european")
	if !errors.Is(wrapped, ErrNoSolution) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !strings.Contains(wrapped.Error(), `board "european"`) {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}
