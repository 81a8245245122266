package main

import "testing"

func TestVersionCommand(t *testing.T) {
	output, err := captureOutput(t, func() error {
		versionCmd.Run(versionCmd, nil)
		return nil
	})
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	assertContains(t, output, []string{"eccctl dev", "commit: none", "built: unknown"})
}
