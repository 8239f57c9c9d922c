// ABOUTME: Tests for CLI commands
// ABOUTME: Tests command structure, flags, and end-to-end runs against a temp data directory

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/harper/newsroom/internal/models"
	"github.com/harper/newsroom/internal/storage"
)

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "newsroom" {
		t.Errorf("expected Use to be 'newsroom', got %q", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("expected root command to have a short description")
	}
	if rootCmd.PersistentFlags().Lookup("data-dir") == nil {
		t.Error("expected --data-dir flag to exist")
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	want := []string{"ingest", "serve", "list", "export", "mcp", "setup", "version"}
	for _, name := range want {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %q subcommand to be registered", name)
		}
	}
}

func TestServeCommandFlags(t *testing.T) {
	for _, flag := range []string{"addr", "debug"} {
		if serveCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag to exist", flag)
		}
	}
}

func TestListCommandFlags(t *testing.T) {
	for _, flag := range []string{"source", "today", "previous", "full", "limit"} {
		if listCmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag to exist", flag)
		}
	}
	if len(listCmd.Aliases) == 0 {
		t.Error("expected list command to have aliases")
	}
}

// resetFlags restores every local flag of cmd to its default
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		dataDir = ""
		for _, cmd := range rootCmd.Commands() {
			resetFlags(cmd)
		}
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeCollections(t *testing.T, dir string, news, press models.Collection) {
	t.Helper()
	fs := storage.NewFileStore(dir)
	if err := fs.Save(models.NewSource(models.SourceNews, "", ""), news); err != nil {
		t.Fatal(err)
	}
	if err := fs.Save(models.NewSource(models.SourcePress, "", ""), press); err != nil {
		t.Fatal(err)
	}
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	old := time.Date(2020, 3, 1, 9, 0, 0, 0, time.UTC)
	writeCollections(t, dir,
		models.Collection{
			{models.KeyTitle: "Old article", models.KeyPublished: models.FormatPublished(old), models.KeySummary: "old"},
			{models.KeyTitle: "Broken date", models.KeyPublished: "yesterday-ish", models.KeySummary: "bad"},
		},
		models.Collection{
			{models.KeyTitle: "Press one", models.KeyPublished: models.FormatPublished(old), models.KeySummary: "press"},
		},
	)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "all news",
			args:     []string{"--data-dir", dir, "list"},
			contains: []string{"Old article", "Broken date", "Sun, 01 Mar 2020 09:00:00 +0000"},
			excludes: []string{"Press one"},
		},
		{
			name:     "press",
			args:     []string{"--data-dir", dir, "list", "--source", "press"},
			contains: []string{"Press one"},
			excludes: []string{"Old article"},
		},
		{
			name:     "previous skips undated",
			args:     []string{"--data-dir", dir, "list", "--previous"},
			contains: []string{"Old article", "record 1"},
		},
		{
			name:     "today is empty",
			args:     []string{"--data-dir", dir, "list", "--today"},
			contains: []string{"No records found"},
			excludes: []string{"Old article"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("execute: %v\n%s", err, out)
			}
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n%s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("output unexpectedly contains %q\n%s", bad, out)
				}
			}
		})
	}
}

func TestListCommand_MissingCollection(t *testing.T) {
	if _, err := executeCommand(t, "--data-dir", t.TempDir(), "list"); err == nil {
		t.Error("expected error when the collection file is missing")
	}
}

func TestListCommand_UnknownSource(t *testing.T) {
	dir := t.TempDir()
	writeCollections(t, dir, models.Collection{}, models.Collection{})
	if _, err := executeCommand(t, "--data-dir", dir, "list", "--source", "weather"); err == nil {
		t.Error("expected error for unknown source")
	}
}

func TestExportCommand(t *testing.T) {
	out, err := executeCommand(t, "export")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{`<opml version="2.0">`, `text="IARC"`, "Latest Articles", "Latest Press Releases", "iarc.who.int"} {
		if !strings.Contains(out, want) {
			t.Errorf("export output missing %q\n%s", want, out)
		}
	}
}

func TestServeCommand_MissingCollections(t *testing.T) {
	if _, err := executeCommand(t, "--data-dir", t.TempDir(), "serve", "--addr", "127.0.0.1:0"); err == nil {
		t.Error("expected serve to fail before listening when collections are missing")
	}
}
