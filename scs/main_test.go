package main

import "testing"

func TestCompletion_FlagsFollowEachCommand(t *testing.T) {
	tree := completion()

	// Commands that read or write the contributions file complete -f with
	// file names; commands without the flag must not offer it.
	withFile := []string{"add", "import", "growth", "history", "period", "project", "assist"}
	for _, name := range withFile {
		sub, ok := tree.Sub[name]
		if !ok {
			t.Fatalf("command %q missing from completion tree", name)
		}
		if _, ok := sub.Flags["f"]; !ok {
			t.Errorf("command %q should complete the -f flag", name)
		}
	}

	for _, name := range []string{"roundup", "topic"} {
		sub, ok := tree.Sub[name]
		if !ok {
			t.Fatalf("command %q missing from completion tree", name)
		}
		if _, ok := sub.Flags["f"]; ok {
			t.Errorf("command %q has no -f flag and should not complete one", name)
		}
	}
}
