package domain

// TeamAll обозначает агрегированный режим "все команды"
const TeamAll = "all"

type Team struct {
	ID   string
	Name string
}

type Member struct {
	ID     string
	Name   string
	Color  string
	TeamID string
}
