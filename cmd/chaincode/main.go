package main

import (
	"fmt"

	"pharmaledger/internal/adapters/in/fabric"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	chaincode, err := contractapi.NewChaincode(&fabric.PharmanetContract{})
	if err != nil {
		fmt.Printf("Error creating pharmanet chaincode: %s", err.Error())
		return
	}
	if err := chaincode.Start(); err != nil {
		fmt.Printf("Error starting pharmanet chaincode: %s", err.Error())
	}
}
