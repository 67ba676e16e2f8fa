package adiga

// Record holds one department's admission statistics row. Year and
// AdmissionType are carried over from the marker rows that precede the
// department rows in the portal's tables; everything else is positional
// cell text kept as-is to preserve the portal's formatting.
type Record struct {
	Year          string `json:"year"`
	AdmissionType string `json:"admission_type"`
	Department    string `json:"department"`
	Quota         string `json:"quota"`
	// CompetitionRate is the 경쟁률 ratio normalized to a decimal,
	// nil when the source text isn't a usable ratio.
	CompetitionRate *float64 `json:"competition_rate"`
	WaitlistRank    string   `json:"waitlist_rank"`
	Cut50           string   `json:"cut_50"`
	Cut70           string   `json:"cut_70"`
	Subjects        string   `json:"subjects"`
}
