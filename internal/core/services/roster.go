package services

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/teampulse/internal/core/domain"
	"github.com/custodia-labs/teampulse/internal/core/ports/driven"
)

// rosterHeader is the expected first line of the roster CSV.
const rosterHeader = "name,role"

// ParseRoster decodes the "name,role" roster CSV. It fails soft the
// same way the log codec does: empty or header-only input yields an
// empty roster, short rows are skipped.
func ParseRoster(text string) domain.Roster {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var roster domain.Roster
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.EqualFold(line, rosterHeader) {
			continue
		}
		fields := strings.SplitN(line, ",", 2)
		if len(fields) < 2 {
			continue
		}
		name := strings.TrimSpace(fields[0])
		role := strings.TrimSpace(fields[1])
		if name == "" {
			continue
		}
		if role == "" {
			roster = append(roster, domain.Member{Name: name, Role: domain.RoleUnassigned})
			continue
		}
		roster = append(roster, domain.Member{Name: name, Role: domain.Role(role)})
	}
	return roster
}

// LoadRoster reads and parses the roster file. An absent file means
// the roster feature is simply not enabled: it returns an empty
// roster, not an error.
func LoadRoster(ctx context.Context, store driven.FileStore, path string) (domain.Roster, error) {
	file, err := store.Read(ctx, path)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ParseRoster(file.Content), nil
}
