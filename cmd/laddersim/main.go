// laddersim plays a complete game against the in-memory chain: it creates
// a room, joins players, starts the race and alternates rolls (with the
// local oracle answering each one) until somebody reaches the final tile
// and claims the pot.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"vrf-ladders/chainmock"
	"vrf-ladders/contract"
	"vrf-ladders/oracle"
	"vrf-ladders/sdk"
)

const (
	oracleAccount = sdk.Address("hive:ladders.oracle")
	entryFee      = 100_000
	rollFee       = 10_000
	bankroll      = 1_000_000
)

func main() {
	playerCount := flag.Int("players", 3, "number of players (1-8)")
	clampFinish := flag.Bool("clamp", false, "clamp overshooting rolls to the final tile")
	flag.Parse()

	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	title, _ := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("LAD", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("DERS", pterm.FgLightYellow.ToStyle()),
	).Srender()
	pterm.Print(title)

	creator := sdk.Address("hive:alice")
	chain := chainmock.New(creator)
	players := make([]sdk.Address, 0, *playerCount)
	for i := 0; i < *playerCount; i++ {
		p := sdk.Address(fmt.Sprintf("hive:player%d", i+1))
		players = append(players, p)
		chain.Fund(p, bankroll)
	}

	// Register the oracle identity before anything rolls.
	chain.SetSender(contract.ContractOwner)
	oracleAddr := string(oracleAccount)
	contract.SetOracleImpl(&oracleAddr, chain)
	vrf := oracle.New(chain, oracleAccount, logger)

	// One room per run; the id comes from a hashed uuid so reruns never
	// collide on the same (creator, gameId) address.
	gameID := sha256.Sum256([]byte(uuid.NewString()))
	gameIDHex := hex.EncodeToString(gameID[:])

	finishRule := "exact"
	if *clampFinish {
		finishRule = "clamp"
	}

	chain.SetSender(creator)
	createPayload := fmt.Sprintf("%s|%d|%d|%d|%s|", gameIDHex, contract.MaxPlayers, entryFee, rollFee, finishRule)
	contract.CreateGameImpl(&createPayload, chain)
	logger.Info("room created", "gameId", gameIDHex[:8], "finishRule", finishRule)

	roomPayload := string(creator) + "|" + gameIDHex
	for _, p := range players {
		chain.SetSender(p)
		chain.AllowTransfer(entryFee)
		payload := roomPayload
		contract.JoinGameImpl(&payload, chain)
	}

	chain.SetSender(creator)
	payload := roomPayload
	contract.StartGameImpl(&payload, chain)
	logger.Info("race started", "players", len(players), "pot", loadRoom(chain, creator, gameID).TotalPot)

	turn := 0
	for {
		g := loadRoom(chain, creator, gameID)
		if g.Finished {
			break
		}
		mover := g.Players[g.CurrentTurnIndex]
		chain.SetSender(mover)

		// Every seventh turn a player sits out instead of feeding the pot.
		turn++
		if turn%7 == 0 {
			p := roomPayload
			contract.PassTurnImpl(&p, chain)
			pterm.Info.Printfln("%s passes", mover)
			continue
		}

		chain.AllowTransfer(rollFee)
		seed := sha256.Sum256([]byte(uuid.NewString()))
		p := roomPayload + "|" + hex.EncodeToString(seed[:])
		contract.RequestRollImpl(&p, chain)

		if _, err := vrf.Fulfill(); err != nil {
			logger.Error("oracle failed", "err", err)
			return
		}
		renderBoard(loadRoom(chain, creator, gameID))
	}

	g := loadRoom(chain, creator, gameID)
	winner := *g.Winner
	pterm.Success.Printfln("%s wins with pot %d lamports", winner, g.TotalPot)

	chain.SetSender(winner)
	payload = roomPayload
	contract.ClaimPrizeImpl(&payload, chain)
	pterm.Success.Printfln("prize claimed, %s now holds %d lamports", winner, chain.Balance(winner))
}

func loadRoom(chain *chainmock.MockChain, creator sdk.Address, gameID [32]byte) *contract.Game {
	return contract.LoadGame(chain, creator, gameID)
}

func renderBoard(g *contract.Game) {
	rows := pterm.TableData{{"player", "tile"}}
	for i, p := range g.Players {
		marker := ""
		if uint8(i) == g.CurrentTurnIndex && !g.Finished {
			marker = " *"
		}
		rows = append(rows, []string{string(p) + marker, fmt.Sprintf("%d / %d", g.Positions[i], g.WinPosition)})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
