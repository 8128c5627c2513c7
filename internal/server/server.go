package server

// Server объединяет HTTP-серверы отдельных областей: расчёт цены
// и рыночное позиционирование.
type Server struct {
	PricingServer
	MarketServer
}

func NewServer(
	pricingServer PricingServer,
	marketServer MarketServer,
) Server {
	return Server{
		PricingServer: pricingServer,
		MarketServer:  marketServer,
	}
}
