package types

type VoteRequest struct {
	Value int `json:"value" binding:"required"` // 1 赞 -1 踩
}

type VoteResponse struct {
	Result   string `json:"result"` // created / removed / switched
	Likes    int64  `json:"likes"`
	Dislikes int64  `json:"dislikes"`
	MyVote   int8   `json:"my_vote"` // 0 表示未投票
}

type VoteSummaryResponse struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
	MyVote   int8  `json:"my_vote"`
}
