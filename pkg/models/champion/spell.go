package champion

// Ability is one of the active spells, every text is always sent, empty when missing.
type Ability struct {
	Slot         string  `json:"key"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Tooltip      string  `json:"tooltip"`
	CooldownText string  `json:"cooldown"`
	CostText     string  `json:"cost"`
	RangeText    string  `json:"range"`
	IconURL      *string `json:"iconUrl"`
}

// Passive has no slot, cooldown, cost or range.
type Passive struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	IconURL     *string `json:"iconUrl"`
}
