package contract

import (
	"encoding/binary"

	"vrf-ladders/sdk"
)

// ---------- Binary State Codec ----------

// codecVersion increments when the storage encoding changes.
// Used to detect incompatible on-chain state.
const codecVersion uint8 = 1

// encodeGame serializes a room record into a compact byte slice.
//
// Layout:
//
//	version | creator | gameId | maxPlayers | players | positions |
//	entryFee | rollFee | totalPot | turnIndex | turnNonce | winPosition |
//	meta | winner? | lastAnchor | mapLen | mapFrom | mapTo | pending?
//
// Meta packs State, Finished and FinishRule into a single byte:
//
//	bits 0-1: State
//	bit  2:   Finished
//	bit  3:   FinishRule
func encodeGame(g *Game) []byte {
	out := make([]byte, 0, 160+len(g.Players)*24)

	w8 := func(x byte) { out = append(out, x) }
	w64 := func(x uint64) {
		var tmp [8]byte
		binary.BigEndian.PutUint64(tmp[:], x)
		out = append(out, tmp[:]...)
	}
	writeStr := func(s string) {
		var tmp [2]byte
		binary.BigEndian.PutUint16(tmp[:], uint16(len(s)))
		out = append(out, tmp[:]...)
		out = append(out, s...)
	}

	w8(codecVersion)
	writeStr(string(g.Creator))
	out = append(out, g.GameID[:]...)
	w8(g.MaxPlayers)

	w8(byte(len(g.Players)))
	for _, p := range g.Players {
		writeStr(string(p))
	}
	out = append(out, g.Positions[:]...)

	w64(g.EntryFeeLamports)
	w64(g.RollFeeLamports)
	w64(g.TotalPot)
	w8(g.CurrentTurnIndex)
	w64(g.TurnNonce)
	w8(g.WinPosition)

	meta := byte(g.State & 0x3)
	if g.Finished {
		meta |= 1 << 2
	}
	meta |= byte(g.FinishRule&0x1) << 3
	w8(meta)

	if g.Winner != nil {
		w8(1)
		writeStr(string(*g.Winner))
	} else {
		w8(0)
	}

	out = append(out, g.LastAnchor[:]...)

	w8(g.MapLen)
	out = append(out, g.MapFrom[:]...)
	out = append(out, g.MapTo[:]...)

	if g.PendingPlayer != nil {
		w8(1)
		writeStr(string(*g.PendingPlayer))
	} else {
		w8(0)
	}

	return out
}

// decodeGame reconstructs a room record from storage bytes, ensuring no
// trailing bytes remain.
func decodeGame(b []byte, chain SDKInterface) *Game {
	r := &rd{b: b, chain: chain}
	require(r.u8() == codecVersion, "unsupported version", chain)

	g := &Game{}
	g.Creator = sdk.Address(r.str())
	copy(g.GameID[:], r.bytes(32))
	g.MaxPlayers = r.u8()

	n := int(r.u8())
	require(n <= MaxPlayers, "corrupt player count", chain)
	for i := 0; i < n; i++ {
		g.Players = append(g.Players, sdk.Address(r.str()))
	}
	copy(g.Positions[:], r.bytes(MaxPlayers))

	g.EntryFeeLamports = r.u64()
	g.RollFeeLamports = r.u64()
	g.TotalPot = r.u64()
	g.CurrentTurnIndex = r.u8()
	g.TurnNonce = r.u64()
	g.WinPosition = r.u8()

	meta := r.u8()
	g.State = GameState(meta & 0x3)
	g.Finished = meta&(1<<2) != 0
	g.FinishRule = FinishRule((meta >> 3) & 0x1)

	if r.u8() == 1 {
		w := sdk.Address(r.str())
		g.Winner = &w
	}

	copy(g.LastAnchor[:], r.bytes(32))

	g.MapLen = r.u8()
	copy(g.MapFrom[:], r.bytes(MaxMapSize))
	copy(g.MapTo[:], r.bytes(MaxMapSize))

	if r.u8() == 1 {
		p := sdk.Address(r.str())
		g.PendingPlayer = &p
	}

	r.mustEnd()
	return g
}

// rd is a binary reader over a byte slice with big-endian integer reads
// and bounds checks that abort on corrupt data.
type rd struct {
	b     []byte
	i     int
	chain SDKInterface
}

func (r *rd) need(n int) { require(r.i+n <= len(r.b), "decode overflow", r.chain) }

func (r *rd) u8() byte {
	r.need(1)
	v := r.b[r.i]
	r.i++
	return v
}

func (r *rd) u16() uint16 {
	r.need(2)
	v := binary.BigEndian.Uint16(r.b[r.i : r.i+2])
	r.i += 2
	return v
}

func (r *rd) u64() uint64 {
	r.need(8)
	v := binary.BigEndian.Uint64(r.b[r.i : r.i+8])
	r.i += 8
	return v
}

func (r *rd) bytes(n int) []byte {
	r.need(n)
	v := r.b[r.i : r.i+n]
	r.i += n
	return v
}

func (r *rd) str() string {
	l := int(r.u16())
	return string(r.bytes(l))
}

// mustEnd verifies the reader consumed all bytes exactly.
func (r *rd) mustEnd() { require(r.i == len(r.b), "trailing bytes", r.chain) }
