package fabric

import (
	"strings"
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"pharmaledger/internal/core/application/usecases/commands"
	"pharmaledger/internal/core/domain/model/company"
	"pharmaledger/internal/core/domain/model/identity"
	"pharmaledger/internal/pkg/errs"
)

// mspSuffix ends every organisation's MSP identifier on the network, e.g.
// manufacturerMSP or transporterMSP.
const mspSuffix = "MSP"

// actorFromContext derives the invoking actor from the client's MSP: the
// MSP name minus the suffix is the organisational role, and the enrollment
// id is the actor identifier recorded on created entities.
func actorFromContext(tctx contractapi.TransactionContextInterface) (identity.Actor, error) {
	mspID, err := tctx.GetClientIdentity().GetMSPID()
	if err != nil {
		return identity.Actor{}, err
	}

	role, err := company.RoleFromString(strings.TrimSuffix(mspID, mspSuffix))
	if err != nil {
		return identity.Actor{}, errs.NewUnauthorizedError("invoke", mspID)
	}

	id, err := tctx.GetClientIdentity().GetID()
	if err != nil {
		return identity.Actor{}, err
	}

	return identity.NewActor(id, role)
}

// clockFromStub stamps records with the transaction timestamp, so every
// endorsing peer computes an identical write set.
func clockFromStub(stub shim.ChaincodeStubInterface) commands.Clock {
	return func() time.Time {
		ts, err := stub.GetTxTimestamp()
		if err != nil || ts == nil {
			return time.Time{}
		}
		return ts.AsTime()
	}
}
