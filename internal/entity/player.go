package entity

// ComputerName is the default name of the O player in games against the computer.
const ComputerName = "Computer"

type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark"`
}

func NewPlayer(name, mark string) Player {
	return Player{
		Name: name,
		Mark: mark,
	}
}
