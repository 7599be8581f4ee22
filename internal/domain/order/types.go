package order

type PaymentType string

const (
	PaymentCash       PaymentType = "CASH"
	PaymentDebitCard  PaymentType = "DEBIT_CARD"
	PaymentCreditCard PaymentType = "CREDIT_CARD"
)

func (p PaymentType) Valid() bool {
	switch p {
	case PaymentCash, PaymentDebitCard, PaymentCreditCard:
		return true
	default:
		return false
	}
}

type ShippingType string

const (
	ShippingEconomic ShippingType = "ECONOMIC"
	ShippingUrgent   ShippingType = "URGENT"
)

func (s ShippingType) Valid() bool {
	switch s {
	case ShippingEconomic, ShippingUrgent:
		return true
	default:
		return false
	}
}

type CarrierType string

const (
	CarrierCorreios CarrierType = "CORREIOS"
	CarrierFedex    CarrierType = "FEDEX"
)

func (c CarrierType) Valid() bool {
	switch c {
	case CarrierCorreios, CarrierFedex:
		return true
	default:
		return false
	}
}
