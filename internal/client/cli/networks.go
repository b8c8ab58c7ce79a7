package cli

import (
	"context"

	"github.com/iudanet/cardinput/pkg/cardnumber"
)

type networkView struct {
	Title    string
	Prefixes []string
}

func (c *Cli) runNetworks(_ context.Context) error {
	networks := make([]networkView, 0, len(cardnumber.Networks()))
	for _, n := range cardnumber.Networks() {
		networks = append(networks, networkView{
			Title:    c.tr.Network(n),
			Prefixes: n.Prefixes(),
		})
	}

	return c.render("networks", networksTemplate, struct {
		Title    string
		Note     string
		Networks []networkView
	}{
		Title:    c.tr.T("networks.title"),
		Note:     c.tr.T("networks.order"),
		Networks: networks,
	})
}
