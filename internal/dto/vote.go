package dto

type CastVoteRequest struct {
	Type string `json:"type"` // "like" or "dislike"
}

type VoteCounts struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type CurrentVoteResponse struct {
	Type string `json:"type,omitempty"` // empty when the account has not voted
}
