package tui

// ─── Tabs ───────────────────────────────────────────────────────────────────

// tab enumerates the three interaction surfaces. The set is closed: there is
// no way to activate a tab outside it.
type tab int

const (
	tabJira tab = iota
	tabValidation
	tabSecurity
)

var tabTitles = map[tab]string{
	tabJira:       "Jira Query",
	tabValidation: "Order Validation",
	tabSecurity:   "Security Analysis",
}

func (t tab) title() string {
	return tabTitles[t]
}

// tabController tracks which tab is active. Exactly one tab is active at all
// times; activating the current tab is a no-op.
type tabController struct {
	active tab
}

func newTabController() *tabController {
	return &tabController{active: tabJira}
}

func (c *tabController) activeTab() tab {
	return c.active
}

// activate switches to t and reports whether the active tab changed.
func (c *tabController) activate(t tab) bool {
	if t < tabJira || t > tabSecurity {
		return false
	}
	if t == c.active {
		return false
	}
	c.active = t
	return true
}

func (c *tabController) next() {
	c.activate((c.active + 1) % 3)
}

func (c *tabController) prev() {
	c.activate((c.active + 2) % 3)
}
