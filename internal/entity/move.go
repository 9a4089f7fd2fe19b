package entity

import "fmt"

type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) IsValid() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}
