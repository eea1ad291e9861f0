package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestRunUnknownCommand(t *testing.T) {
	if err := Run(context.Background(), []string{"bogus"}); err == nil {
		t.Fatal("want an error for an unknown subcommand")
	}
}

func TestRunNoArgs(t *testing.T) {
	if err := Run(context.Background(), nil); err == nil {
		t.Fatal("want an error when no subcommand is given")
	}
}

func TestRunHelp(t *testing.T) {
	if err := Run(context.Background(), []string{"--help"}); err != nil {
		t.Errorf("want --help to succeed, got %v", err)
	}
	if err := Run(context.Background(), []string{"help"}); err != nil {
		t.Errorf("want help to succeed, got %v", err)
	}
}

func TestRunVersion(t *testing.T) {
	if err := Run(context.Background(), []string{"--version"}); err != nil {
		t.Errorf("want --version to succeed, got %v", err)
	}
}

func TestDecodeRequiresArgument(t *testing.T) {
	if err := Decode(context.Background(), nil); err == nil {
		t.Fatal("want an error when decode is given no target")
	}
}

func TestDecodeSingleFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "sample.xlog")
	frame := []byte{0x03, 1, 0, 0, 0, 5, 0, 0, 0, 0, 0, 0, 0}
	frame = append(frame, []byte("hello")...)
	frame = append(frame, 0x00)
	if err := os.WriteFile(in, frame, 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if err := Decode(context.Background(), []string{in}); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	out, err := os.ReadFile(filepath.Join(dir, "sample_.log"))
	if err != nil {
		t.Fatalf("reading decoded output: %v", err)
	}
	if string(out) != "hello" {
		t.Errorf("got %q, want %q", out, "hello")
	}
}

func TestCleanRequiresArgument(t *testing.T) {
	if err := Clean(context.Background(), nil); err == nil {
		t.Fatal("want an error when clean is given no target")
	}
}

func TestCleanRemovesDecodedOutputs(t *testing.T) {
	dir := t.TempDir()
	leftover := filepath.Join(dir, "old_.log")
	if err := os.WriteFile(leftover, []byte("stale"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if err := Clean(context.Background(), []string{dir}); err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if _, err := os.Stat(leftover); !os.IsNotExist(err) {
		t.Error("want the decoded output to have been removed")
	}
}
