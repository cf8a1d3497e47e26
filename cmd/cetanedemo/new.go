package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	cetanecli "github.com/cetane-dev/cetane/internal/cli"
)

// newCmd scaffolds an empty migration entry, appending it to the manifest's
// source text. A short uuid suffix keeps concurrently-created migration
// names from colliding before either author has committed.
func newCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <description>",
		Short: "Append a scaffolded migration entry to the manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := currentConfig()
			slug := slugify(args[0])
			suffix := strings.Split(uuid.New().String(), "-")[0]
			name := fmt.Sprintf("%s_%s", slug, suffix)

			stub := fmt.Sprintf(`
  - name: %s
    depends_on: []
    operations:
      - type: run_sql
        sql: "-- TODO: fill in %s"
`, name, slug)

			f, err := os.OpenFile(cfg.manifest, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
			if err != nil {
				return fmt.Errorf("opening manifest %s: %w", cfg.manifest, err)
			}
			defer f.Close()
			if _, err := f.WriteString(stub); err != nil {
				return fmt.Errorf("appending to manifest %s: %w", cfg.manifest, err)
			}

			fmt.Println(cetanecli.Success(fmt.Sprintf("scaffolded migration %s in %s", name, cfg.manifest)))
			return nil
		},
	}
}

func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('_')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
