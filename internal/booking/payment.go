package booking

import "context"

// PaymentDetails 支付确认入参。
type PaymentDetails struct {
	Method string // 支付方式（card、wallet 等）
}

// PaymentGateway 支付网关协作方：成功返回 nil，失败返回 error，
// 失败时订单保持 WAITING_PAYMENT 不变。
type PaymentGateway interface {
	Charge(ctx context.Context, b *Booking, d PaymentDetails) error
}

// StubGateway 总是扣款成功的占位实现（接入真实网关前使用）。
type StubGateway struct{}

func (StubGateway) Charge(ctx context.Context, b *Booking, d PaymentDetails) error {
	return nil
}
