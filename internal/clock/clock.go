package clock

import "time"

// Clock abstrai o "agora" para que regras dependentes de tempo
// (janela de cancelamento) sejam determinísticas em teste.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System retorna o relógio real do servidor.
func System() Clock {
	return systemClock{}
}

// Fixed é um relógio congelado para testes.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}
