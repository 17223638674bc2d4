package service

import (
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	checkoutModel "universe_backend/internals/features/payments/checkout/model"
)

var SnapClient snap.Client

// InitMidtrans wires the Snap client with the server key once at startup.
func InitMidtrans(serverKey string, production bool) {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	SnapClient.New(serverKey, env)
}

// GenerateSnapToken creates a Midtrans Snap token for one purchase order.
func GenerateSnapToken(order checkoutModel.PurchaseOrderModel, customerName string) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderID.String(),
			GrossAmt: order.OrderAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}
