// Package assets embeds the default difficulty table, the board template and
// the results-store migrations.
package assets

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
)

//go:embed difficulties.yaml board.tmpl migrations/*.sql
var FS embed.FS

// Difficulties returns the raw default difficulty table.
func Difficulties() ([]byte, error) {
	return FS.ReadFile("difficulties.yaml")
}

// BoardTemplate returns the text/template source used to draw the board.
func BoardTemplate() (string, error) {
	b, err := FS.ReadFile("board.tmpl")
	return string(b), err
}

// Migration is one embedded SQL script.
type Migration struct {
	Name string
	SQL  string
}

// Migrations returns migrations/*.sql in lexical order.
func Migrations() ([]Migration, error) {
	names, err := fs.Glob(FS, "migrations/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	out := make([]Migration, 0, len(names))
	for _, name := range names {
		b, err := FS.ReadFile(name)
		if err != nil {
			return nil, err
		}
		out = append(out, Migration{Name: strings.TrimPrefix(name, "migrations/"), SQL: string(b)})
	}
	return out, nil
}
