package decor

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Compose shapes with decorators under a cycle policy"
	MsgDescribeShort   = "Describe a shape built from inline specs"
	MsgRenderShort     = "Render a recipe file"
	MsgPoliciesShort   = "Show how each cycle policy treats a repeated decorator"
	MsgKindsShort      = "List the shapes and decorators that can be composed"
	MsgInitShort       = "Write a starter recipe and project config"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."

	// Status messages
	MsgInitCreated = "Created decor project in %s"
	MsgInitDryRun  = "Dry run: would create decor project in %s"
	MsgVersionLine = "decor version %s\n  commit: %s\n  built:  %s\n"

	// Error messages
	MsgErrNoCommand = "no command specified"
	MsgErrNoShape   = "--shape is required"
	MsgErrNoHelp    = "help command not found"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, term, text, json, yaml, toml, xml"
	MsgFlagConfig   = "Config file (default is $XDG_CONFIG_HOME/decor/config.toml)"
	MsgFlagStyles   = "YAML file with terminal styles"
	MsgFlagShape    = "Base shape as kind:value, e.g. circle:2"
	MsgFlagDecorate = "Decorator as kind:value, repeatable, innermost first"
	MsgFlagPolicy   = "Cycle policy for every decorator: throw, absorb, allow"
	MsgFlagForce    = "Overwrite existing files"
	MsgFlagDryRun   = "Preview changes without writing files"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/describe-long.txt
	msgDescribeLongRaw string
	MsgDescribeLong    = strings.TrimSpace(msgDescribeLongRaw)

	//go:embed msgs/describe-example.txt
	msgDescribeExampleRaw string
	MsgDescribeExample    = strings.TrimRight(msgDescribeExampleRaw, "\n")

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/init-long.txt
	msgInitLongRaw string
	MsgInitLong    = strings.TrimSpace(msgInitLongRaw)

	//go:embed msgs/init-example.txt
	msgInitExampleRaw string
	MsgInitExample    = strings.TrimRight(msgInitExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
