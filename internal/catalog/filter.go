package catalog

import (
	"strings"

	"github.com/youruser/helpcard/internal/help"
)

type FilterOptions struct {
	// Groups keeps only groups whose name contains one of these.
	Groups []string
	// FreeWords keeps items whose name or description contains every word,
	// case-insensitively. Groups left empty are dropped.
	FreeWords string
}

func containsAny(hay string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(hay, n) {
			return true
		}
	}
	return false
}

// Filter returns a copy of l narrowed by opt. Item bytes are shared.
func Filter(l *help.HelpList, opt FilterOptions) *help.HelpList {
	out := &help.HelpList{Title: l.Title, Theme: l.Theme}
	kw := strings.Fields(strings.ToLower(opt.FreeWords))

	for _, g := range l.Groups {
		if len(opt.Groups) > 0 && !containsAny(g.Name, opt.Groups) {
			continue
		}
		if len(kw) == 0 {
			out.Groups = append(out.Groups, g)
			continue
		}
		ng := help.HelpGroup{Name: g.Name}
		for _, it := range g.Items {
			if matchesAll(it, kw) {
				ng.Items = append(ng.Items, it)
			}
		}
		if len(ng.Items) > 0 {
			out.Groups = append(out.Groups, ng)
		}
	}
	return out
}

func matchesAll(it help.HelpItem, kw []string) bool {
	name := strings.ToLower(it.Name)
	desc := strings.ToLower(it.Desc)
	for _, k := range kw {
		if !strings.Contains(name, k) && !strings.Contains(desc, k) {
			return false
		}
	}
	return true
}
