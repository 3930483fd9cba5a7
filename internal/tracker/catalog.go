package tracker

import (
	"errors"
	"fmt"
	"strings"
)

// Target is one external voting site.
type Target struct {
	ID   string
	Name string
	URL  string
}

// Catalog is the fixed, ordered set of targets known at build time.
type Catalog struct {
	targets []Target
	byID    map[string]int
}

func NewCatalog(targets []Target) (*Catalog, error) {
	if len(targets) == 0 {
		return nil, errors.New("catalog is empty")
	}
	c := &Catalog{
		targets: make([]Target, 0, len(targets)),
		byID:    make(map[string]int, len(targets)),
	}
	for _, t := range targets {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, fmt.Errorf("target %q has no id", t.Name)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("duplicate target id %q", id)
		}
		t.ID = id
		c.byID[id] = len(c.targets)
		c.targets = append(c.targets, t)
	}
	return c, nil
}

var defaultTargets = []Target{
	{ID: "findmc", Name: "FindMCServer", URL: "https://findmcserver.com/server/badwolfmc"},
	{ID: "planetmc", Name: "Planet Minecraft", URL: "https://www.planetminecraft.com/server/badwolfmc-an-adult-smp-minecraft-server/vote/"},
	{ID: "topg", Name: "TopG", URL: "https://topg.org/minecraft-servers/server-443953"},
	{ID: "mclike", Name: "MCLike", URL: "https://mclike.com/minecraft-server-180700"},
	{ID: "mclistio", Name: "MCList.io", URL: "https://mclist.io/server/66576-play-badwolfmc-com/vote"},
	{ID: "mcbuzz", Name: "Minecraft.buzz", URL: "https://minecraft.buzz/vote/4587"},
	{ID: "mcmp", Name: "Minecraft-MP", URL: "https://minecraft-mp.com/server/135406/vote/"},
	{ID: "mcservers", Name: "MinecraftServers.org", URL: "https://minecraftservers.org/vote/388761"},
	{ID: "mcserverlist", Name: "Minecraft-Server-List", URL: "https://minecraft-server-list.com/server/368754/vote/"},
	{ID: "mcservernet", Name: "Minecraft-Server.net", URL: "https://minecraft-server.net/index.php?a=in&u=BadWolfMC"},
	{ID: "mclist", Name: "MinecraftList.org", URL: "https://minecraftlist.org/vote/4015"},
	{ID: "mctracker", Name: "Minecraft-Tracker", URL: "https://minecraft-tracker.com/server/3818/vote/"},
}

// DefaultCatalog returns the built-in list of 12 voting sites.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTargets)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Len() int { return len(c.targets) }

// Targets returns the targets in display order.
func (c *Catalog) Targets() []Target {
	out := make([]Target, len(c.targets))
	copy(out, c.targets)
	return out
}

func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *Catalog) Lookup(id string) (Target, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Target{}, false
	}
	return c.targets[i], true
}

// At returns the target at display position i.
func (c *Catalog) At(i int) (Target, bool) {
	if i < 0 || i >= len(c.targets) {
		return Target{}, false
	}
	return c.targets[i], true
}
