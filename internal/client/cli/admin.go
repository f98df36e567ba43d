package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/microbank/securebank/internal/client/models"
)

// Clients lists the client accounts for administrators, optionally filtered
// by status ("all", "active", "blacklisted") and a free-text search term
// matched against name and email.
func (a *App) Clients(ctx context.Context, status, term string) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Admin access required.")
		return nil
	}

	clients, err := a.api.ListClients(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load clients.")
		return err
	}

	active, blacklisted := 0, 0
	for _, c := range clients {
		if c.Blacklisted {
			blacklisted++
		} else {
			active++
		}
	}
	fmt.Fprintf(a.out, "Clients: %d total, %d active, %d blacklisted\n", len(clients), active, blacklisted)

	filtered := filterClients(clients, status, term)
	if len(filtered) == 0 {
		fmt.Fprintln(a.out, "No clients found")
		return nil
	}

	for _, c := range filtered {
		state := "active"
		if c.Blacklisted {
			state = "blacklisted"
		}
		fmt.Fprintf(a.out, "%-36s  %-11s  %s <%s>  joined %s\n",
			c.ID, state, c.Name, c.Email, c.CreatedAt.Format("Jan 02, 2006"))
	}
	return nil
}

// SetClientBlacklisted blocks or unblocks one client account.
func (a *App) SetClientBlacklisted(ctx context.Context, clientID string, blacklisted bool) error {
	if !a.isAdmin() {
		fmt.Fprintln(a.out, "Admin access required.")
		return nil
	}

	if _, err := a.api.SetBlacklisted(ctx, clientID, blacklisted); err != nil {
		fmt.Fprintln(a.out, "Could not update client status.")
		return err
	}

	if blacklisted {
		fmt.Fprintln(a.out, "Client blocked successfully.")
	} else {
		fmt.Fprintln(a.out, "Client unblocked successfully.")
	}
	return nil
}

// filterClients applies the status filter and search term. An empty or
// unrecognized status means no status filtering.
func filterClients(clients []models.User, status, term string) []models.User {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.User, 0, len(clients))
	for _, c := range clients {
		switch status {
		case "active":
			if c.Blacklisted {
				continue
			}
		case "blacklisted":
			if !c.Blacklisted {
				continue
			}
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(c.Name), term) &&
			!strings.Contains(strings.ToLower(c.Email), term) {
			continue
		}
		out = append(out, c)
	}
	return out
}
