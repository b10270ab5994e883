package engine

import (
	"strings"
	"testing"
)

// The tracker only ever sees free text, so the instruction must pin the
// narrator to the exact phrases the scanner looks for.
func TestSystemInstructionContract(t *testing.T) {
	required := []string{
		"POWER",
		"ENGINE",
		"LIFE SUPPORT",
		"IS FIXED",
		"MISSION SUCCESS",
		"BEGIN",
		"Open <SYSTEM>",
	}
	for _, phrase := range required {
		if !strings.Contains(systemInstruction, phrase) {
			t.Errorf("system instruction is missing %q", phrase)
		}
	}
}
