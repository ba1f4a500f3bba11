package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestTopicManager_ScanTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"help/dry-run.txt":      file("Information about dry-run mode"),
		"help/architecture.md":  file("# Architecture\n\nSystem architecture details"),
		"help/config.txxt":      file("Configuration Guide\n=================="),
		"help/ignore.json":      file("This should be ignored"),
		"help/advanced/deep.md": file("Nested topic"),
	}

	t.Run("default extensions", func(t *testing.T) {
		tm := New(fsys)
		require.NoError(t, tm.scanTopics())

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"dry-run", true, "Information about dry-run mode"},
			{"architecture", true, "# Architecture\n\nSystem architecture details"},
			{"deep", true, "Nested topic"},
			{"config", false, ""},
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				assert.Equal(t, tt.expected, exists)
				if exists {
					assert.Equal(t, tt.content, topic.Content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(fsys, Options{Extensions: []string{".txt", ".md", ".txxt"}})
		require.NoError(t, tm.scanTopics())

		topic, exists := tm.GetTopic("config")
		require.True(t, exists)
		assert.Equal(t, "Configuration Guide\n==================", topic.Content)
		assert.Equal(t, "help/config.txxt", topic.FilePath)
	})
}

func TestTopicManager_GetTopic(t *testing.T) {
	tm := New(fstest.MapFS{
		"option-policy.md":  file("Policy help"),
		"option-verbose.md": file("Verbose help"),
		"recipes.md":        file("Recipe help"),
	})
	require.NoError(t, tm.scanTopics())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"recipes", "recipes", true},
		{"option-policy", "option-policy", true},
		{"policy", "option-policy", true},
		{"--policy", "option-policy", true},
		{"-policy", "option-policy", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopicManager_ListTopics(t *testing.T) {
	tm := New(fstest.MapFS{
		"policies.md": file("p"),
		"recipes.md":  file("r"),
		"chains.txt":  file("c"),
	})
	require.NoError(t, tm.scanTopics())
	assert.Equal(t, []string{"chains", "policies", "recipes"}, tm.ListTopics())
}

func TestNilAndEmptyFS(t *testing.T) {
	tm := New(nil)
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())

	tm = New(fstest.MapFS{})
	require.NoError(t, tm.scanTopics())
	assert.Empty(t, tm.ListTopics())
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "describe",
		Short: "Describe something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	err := Initialize(rootCmd, fstest.MapFS{
		"policies.txt":      file("POLICIES\nHow repeats are handled."),
		"option-policy.txt": file("The --policy flag."),
	})
	require.NoError(t, err)
	return rootCmd, out
}

func TestInitialize(t *testing.T) {
	rootCmd, _ := newRoot(t)
	rootCmd.InitDefaultHelpCmd()

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help", helpCmd.Name())
	assert.Equal(t, "help [command or topic]", helpCmd.Use)
}

func TestIntegration_HelpCommand(t *testing.T) {
	t.Run("topic", func(t *testing.T) {
		rootCmd, out := newRoot(t)
		rootCmd.SetArgs([]string{"help", "policies"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "POLICIES")
	})

	t.Run("topic index", func(t *testing.T) {
		rootCmd, out := newRoot(t)
		rootCmd.SetArgs([]string{"help", "topics"})
		require.NoError(t, rootCmd.Execute())

		text := out.String()
		assert.Contains(t, text, "General topics:\n  policies")
		assert.Contains(t, text, "Option topics:\n  --policy")
		assert.True(t, strings.HasSuffix(text, "Use 'testapp help <topic>' to read about a specific topic.\n"))
	})

	t.Run("command", func(t *testing.T) {
		rootCmd, out := newRoot(t)
		rootCmd.SetArgs([]string{"help", "describe"})
		require.NoError(t, rootCmd.Execute())
		assert.Contains(t, out.String(), "Describe something")
	})
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{}
	assert.Equal(t, "# Title", r.Render("# Title", ".md"))
}

func TestGlamourRenderer(t *testing.T) {
	r := &GlamourRenderer{Style: "notty", Width: 40}

	assert.Equal(t, "plain text", r.Render("plain text", ".txt"))

	out := r.Render("# Policies\n\nSome **bold** words.", ".md")
	assert.Contains(t, out, "Policies")
	assert.Contains(t, out, "bold")
	assert.NotEqual(t, "# Policies\n\nSome **bold** words.", out)
}
