// Command chess-mini-me plays a game of chess in the terminal. Either side
// can be a human entering coordinate moves, the search engine, or a random
// mover.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/unkokaeru/chess-mini-me/internal/board"
	"github.com/unkokaeru/chess-mini-me/internal/engine"
)

func main() {
	white := flag.String("white", "human", `White player: "human", "engine" or "random"`)
	black := flag.String("black", "engine", `Black player: "human", "engine" or "random"`)
	depth := flag.Int("depth", engine.DefaultDepth, "Engine search depth in plies")
	fen := flag.String("fen", board.StartFEN, "Starting position as FEN")
	flag.Parse()

	players := map[board.Color]string{board.White: *white, board.Black: *black}
	for color, kind := range players {
		switch kind {
		case "human", "engine", "random":
		default:
			fmt.Fprintf(os.Stderr, "unknown player kind %q for %s\n", kind, color)
			os.Exit(2)
		}
	}

	pos, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	eng := engine.New(*depth)
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Println(pos)
		moves := pos.LegalMoves()

		if pos.Checkmate {
			fmt.Printf("Checkmate. %s wins.\n", pos.SideToMove.Other())
			return
		}
		if pos.Stalemate {
			fmt.Println("Stalemate.")
			return
		}
		if pos.InCheck() {
			fmt.Println("Check.")
		}

		switch players[pos.SideToMove] {
		case "human":
			m, cmd := readMove(scanner, pos, moves)
			if cmd == cmdQuit {
				return
			}
			if cmd == cmdUndo {
				continue
			}
			pos.MakeMove(m)
		case "random":
			m := engine.FindRandomMove(moves)
			fmt.Printf("%s plays %s\n", pos.SideToMove, m)
			pos.MakeMove(m)
		case "engine":
			m, score := eng.FindBestMove(pos, moves)
			fmt.Printf("%s plays %s (score %d, %d nodes)\n", pos.SideToMove, m, score, eng.Nodes())
			eng.ResetNodes()
			pos.MakeMove(m)
		}
	}
}

type command int

const (
	cmdMove command = iota
	cmdQuit
	cmdUndo
)

// readMove prompts until the human enters a legal move or a command.
func readMove(scanner *bufio.Scanner, pos *board.Position, moves []board.Move) (board.Move, command) {
	for {
		fmt.Printf("%s> ", pos.SideToMove)
		if !scanner.Scan() {
			fmt.Println()
			return board.Move{}, cmdQuit
		}
		input := strings.TrimSpace(strings.ToLower(scanner.Text()))

		switch input {
		case "":
			continue
		case "quit", "exit":
			return board.Move{}, cmdQuit
		case "moves":
			for _, m := range moves {
				fmt.Printf("%s ", m)
			}
			fmt.Println()
			continue
		case "undo":
			// Take back a full turn so the same side is on move again.
			pos.UndoMove()
			pos.UndoMove()
			return board.Move{}, cmdUndo
		}

		m, err := parseMove(pos, moves, input)
		if err != nil {
			fmt.Println(err)
			continue
		}
		return m, cmdMove
	}
}

// parseMove reads coordinate notation such as "e2e4", with an optional
// promotion suffix as in "e7e8q".
func parseMove(pos *board.Position, moves []board.Move, input string) (board.Move, error) {
	if len(input) != 4 && len(input) != 5 {
		return board.Move{}, fmt.Errorf("expected a move like e2e4 or e7e8q, got %q", input)
	}

	from, err := board.ParseSquare(input[:2])
	if err != nil {
		return board.Move{}, err
	}
	to, err := board.ParseSquare(input[2:4])
	if err != nil {
		return board.Move{}, err
	}

	m, err := board.NewMove(pos, from, to)
	if err != nil {
		return board.Move{}, err
	}

	legal, ok := board.FindMove(moves, m)
	if !ok {
		return board.Move{}, fmt.Errorf("%w: %s", board.ErrIllegalMove, m)
	}

	if legal.Promotion && len(input) == 5 {
		promo, err := promotionPiece(input[4])
		if err != nil {
			return board.Move{}, err
		}
		legal.Promo = promo
	}
	return legal, nil
}

func promotionPiece(c byte) (board.PieceType, error) {
	switch c {
	case 'q':
		return board.Queen, nil
	case 'r':
		return board.Rook, nil
	case 'b':
		return board.Bishop, nil
	case 'n':
		return board.Knight, nil
	}
	return board.NoPieceType, fmt.Errorf("unknown promotion piece %q", c)
}
