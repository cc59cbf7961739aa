// Command demo sets up a 64-bit token ledger and a 32-bit coin ledger, moves
// half of a balance in each and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/tinoosan/fungible/internal/ledger"
)

func main() {
	token := ledger.New[uint64, uint64]()
	coin := ledger.New[uint32, uint32]()

	var staker, provider uint64 = 1, 2
	var buyer, seller uint32 = 1, 2

	token.SetBalance(staker, 100)
	if err := token.Transfer(staker, provider, 50); err != nil {
		fmt.Fprintln(os.Stderr, "token transfer:", err)
	}
	fmt.Printf("Balance of token address %d: %d\n", staker, token.BalanceOf(staker))
	fmt.Printf("Balance of token address %d: %d\n", provider, token.BalanceOf(provider))

	coin.SetBalance(buyer, 100)
	if err := coin.Transfer(buyer, seller, 50); err != nil {
		fmt.Fprintln(os.Stderr, "coin transfer:", err)
	}
	fmt.Printf("Balance of coin address %d: %d\n", buyer, coin.BalanceOf(buyer))
	fmt.Printf("Balance of coin address %d: %d\n", seller, coin.BalanceOf(seller))
}
