package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestRootCommandHelp(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--help"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--help failed: %v", err)
	}

	output := out.String()
	for _, sub := range []string{"run", "extract", "donations"} {
		if !strings.Contains(output, sub) {
			t.Errorf("help output should mention %q", sub)
		}
	}

	// The parsed --help flag stays set on the shared rootCmd and would make
	// later Execute calls print help instead of running; reset it.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		f.Value.Set("false")
	}
}

func TestRootCommandVersion(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetArgs([]string{"--version"})
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("--version failed: %v", err)
	}
	if !strings.Contains(out.String(), "dev") {
		t.Errorf("version output = %q, want the dev version string", out.String())
	}
}

func TestDonationForUnknownPlatform(t *testing.T) {
	if _, err := donationFor("myspace"); err == nil {
		t.Error("donationFor() should reject unknown platforms")
	}
	d, err := donationFor("tiktok")
	if err != nil {
		t.Fatalf("donationFor(tiktok) error = %v", err)
	}
	if d.Platform != "TikTok" {
		t.Errorf("Platform = %q, want TikTok", d.Platform)
	}
}
