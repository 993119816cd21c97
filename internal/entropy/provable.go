package entropy

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"sync"
	"time"
)

// Provable derives entropy as HMAC-SHA256(serverSeed, nonce). The seed hash
// is published up front so draws can be audited after rotation.
type Provable struct {
	mu         sync.Mutex
	serverSeed string
	hash       string
	rotatedAt  time.Time
	nonce      int
}

func NewProvable() *Provable {
	p := &Provable{}
	p.rotate()
	return p
}

func (p *Provable) rotate() {
	seed := generateSeed()
	hash := sha256.Sum256([]byte(seed))

	p.serverSeed = seed
	p.hash = hex.EncodeToString(hash[:])
	p.rotatedAt = time.Now()
	p.nonce = 0
}

func generateSeed() string {
	buf := make([]byte, 32)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}

func (p *Provable) Next() (uint64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	h := hmac.New(sha256.New, []byte(p.serverSeed))
	h.Write([]byte(strconv.Itoa(p.nonce)))
	p.nonce++

	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8]), nil
}

func (p *Provable) SeedHash() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hash
}

func (p *Provable) MaybeRotate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if time.Since(p.rotatedAt).Hours() > 24 {
		p.rotate()
	}
}
