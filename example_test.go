package hashtree_test

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gordian-engine/hashtree"
)

func ExampleTree() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	tree, err := hashtree.New(log, hashtree.Config{
		Items:        [][]byte{[]byte("a"), []byte("b"), []byte("c"), []byte("d")},
		HashFunction: "SHA256",
	})
	if err != nil {
		panic(err)
	}

	proof, err := tree.Prove([]byte("b"))
	if err != nil {
		panic(err)
	}

	ok, err := tree.Verify([]byte("b"), proof)
	if err != nil {
		panic(err)
	}

	fmt.Printf("height=%d root=%x\n", tree.Height(), tree.BlockHeader())
	fmt.Printf("steps=%d first=%s verified=%t\n", len(proof), proof[0].Direction, ok)

	// Output:
	// height=2 root=c5fdd166560d16ced70242cfaf2894e2bc666fe24fff13449c52299f63c749ce
	// steps=2 first=left verified=true
}
