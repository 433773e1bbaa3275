package wheel

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// Source источник равномерных случайных чисел в [0, 1)
type Source interface {
	Float64() float64
}

// NewSeededSource детерминированный источник (PCG), один seed - одна последовательность
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type cryptoSource struct{}

// NewCryptoSource источник на crypto/rand
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Float64() float64 {
	var b [8]byte
	// С go 1.24 crypto/rand.Read всегда заполняет буфер и не возвращает ошибку
	_, _ = crand.Read(b[:])
	// 53 старших бита -> [0, 1)
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

type lockedSource struct {
	mtx sync.Mutex
	src Source
}

// NewLockedSource оборачивает источник мьютексом для общего использования из нескольких сессий
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) Float64() float64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.src.Float64()
}
