package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"chessforge/ai"
	"chessforge/engine"
	"chessforge/game"
)

// runPlay runs an interactive session against one of the ai package's
// reference opponents: the human enters UCI-style moves ("e2e4", "e7e8q")
// on stdin, the AI's replies print automatically once PollReply picks them
// up.
func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	fen := fs.String("fen", engine.StartFEN, "starting FEN")
	opponent := fs.String("ai", "negamax", "AI opponent: \"random\" or \"negamax\"")
	depth := fs.Int("depth", 4, "negamax search depth (ignored for -ai=random)")
	humanColor := fs.String("color", "white", "human side: \"white\" or \"black\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := game.NewGame()
	if err := g.SetPosition(*fen); err != nil {
		return fmt.Errorf("setting position: %w", err)
	}

	var opp game.AI
	switch *opponent {
	case "random":
		opp = ai.NewRandom(rand.NewSource(time.Now().UnixNano()))
	case "negamax":
		opp = ai.NewNegamax(*depth)
	default:
		return fmt.Errorf("unknown -ai %q", *opponent)
	}

	aiColor := engine.Black
	if *humanColor == "black" {
		aiColor = engine.White
	} else if *humanColor != "white" {
		return fmt.Errorf("unknown -color %q", *humanColor)
	}
	g.SetAI(aiColor, opp)
	g.Start()

	fmt.Println(renderBoard(g.Board()))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		if m, ok := g.PollReply(); ok {
			fmt.Printf("ai plays %s\n", m)
			fmt.Println(renderBoard(g.Board()))
		}
		if g.IsDrawByRule() {
			fmt.Println("draw by rule")
			return nil
		}
		if len(g.Board().GenerateMoves()) == 0 {
			fmt.Println("game over")
			return nil
		}
		if g.Board().SideToMove() == aiColor {
			continue
		}

		fmt.Print("your move> ")
		if !scanner.Scan() {
			return nil
		}
		move, ok := g.MakeUCIMove(scanner.Text())
		if !ok {
			fmt.Println("illegal or unparseable move")
			continue
		}
		fmt.Printf("you play %s\n", move)
		fmt.Println(renderBoard(g.Board()))
	}
}
