package social

// Candidate is an Instagram business account returned by the OAuth picker but
// not yet persisted. It only lives for the duration of the linking session.
type Candidate struct {
	InstagramBusinessAccountID string
	Username                   string
	AccountName                string
	FacebookPageID             string
	PageAccessToken            string
	ProfilePictureURL          string
}

// FilterLinkedCandidates removes candidates whose business account ID is
// already present in the linked set. A candidate that is already linked must
// never be offered again.
func FilterLinkedCandidates(candidates []Candidate, linked []*InstagramAccount) []Candidate {
	linkedIDs := make(map[string]struct{}, len(linked))
	for _, account := range linked {
		linkedIDs[account.InstagramBusinessAccountID] = struct{}{}
	}

	result := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if _, ok := linkedIDs[candidate.InstagramBusinessAccountID]; ok {
			continue
		}
		result = append(result, candidate)
	}
	return result
}
