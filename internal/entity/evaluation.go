package entity

// EvaluationRevision tags cached search results. Bump it whenever scoring or the tie-break
// changes so results of an older search are never replayed.
const EvaluationRevision = "r1"

// Evaluation is a search result for one position and one side to move.
type Evaluation struct {
	Board    string `json:"board"`
	Computer string `json:"computer"`
	Revision string `json:"revision"`
	Move     Move   `json:"move"`
	Score    int    `json:"score"`
}

func NewEvaluation(board Board, computer string, move Move, score int) *Evaluation {
	return &Evaluation{
		Board:    board.Key(),
		Computer: computer,
		Revision: EvaluationRevision,
		Move:     move,
		Score:    score,
	}
}

func (that *Evaluation) Key() string {
	return that.Board + ":" + that.Computer + ":" + that.Revision
}

// IsCurrent reports whether the evaluation was produced by this revision of the search.
func (that *Evaluation) IsCurrent() bool {
	return that.Revision == EvaluationRevision
}

// EvaluationKey identifies a cached search result of the current revision
// by board key and computer mark.
func EvaluationKey(boardKey, computer string) string {
	return boardKey + ":" + computer + ":" + EvaluationRevision
}
