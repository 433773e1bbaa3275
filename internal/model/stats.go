package model

// HouseStats агрегированная статистика колеса по всем сессиям
type HouseStats struct {
	TotalRounds      int
	TotalStaked      int
	TotalPaid        int
	Wins             int
	SuppressedRounds int
	CappedRounds     int

	CurrentRTP     float64 // TotalPaid/TotalStaked*100
	TheoreticalRTP float64 // Ожидаемый RTP таблицы без учета дневного лимита

	WindowRTP    float64 // RTP в окне последних раундов
	WindowSize   int
	WindowRounds int

	DriftAlert bool // WindowRTP сильно отклонился от TheoreticalRTP
}
