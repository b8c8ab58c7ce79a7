package cli

const resultTemplate = `
=== {{.Title}} ===

{{- if .Rejected }}
{{.Labels.Number}}: {{.Input}}
{{.Labels.Status}}: {{.Status}} ({{.Rejected}})
{{- else }}
{{.Labels.Number}}: {{.Display}}
{{- if .Network }}
{{.Labels.Network}}: {{.Network}}
{{- end }}
{{.Labels.Status}}: {{.Status}}
{{- if .Error }}
{{.Labels.Error}}: {{.Error}}
{{- end }}
{{- end }}
`

const networksTemplate = `
=== {{.Title}} ===
{{ range .Networks }}
{{ printf "%-18s" .Title }} {{ join .Prefixes ", " }}
{{- end }}

{{.Note}}
`

const typeHeaderTemplate = `=== {{.Title}} ===
{{.Hint}}

`

const usageTemplate = `
Card Input

Usage:
  cardinput [OPTIONS] COMMAND

Options:
  --version            Show version information
  --lang LANG          Message language, e.g. en or ru (default: en)
  --log-level LEVEL    Log level: debug, info, warn, error (default: warn)
  --no-color           Disable colored output

Environment (used when the option is not given):
  CARDINPUT_LANG       Same as --lang
  CARDINPUT_LOG_LEVEL  Same as --log-level
  NO_COLOR             Same as --no-color when set to any value

Commands:
  type                 Enter a card number interactively, key by key
  check NUMBER...      Format, classify and validate card numbers
  networks             Show card networks and their number prefixes
  help                 Show this help

Examples:
  cardinput type
  cardinput check 4532015112830366 "5105 1051 0510 5100"
  cardinput --lang ru check 4532-0151-1283-0367
  cardinput networks
`
