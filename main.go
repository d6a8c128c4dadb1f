package main

import (
	"fmt"

	"github.com/storefronthq/storefront/backend/bootstrap"
	"github.com/storefronthq/storefront/backend/config"
)

func main() {
	r := bootstrap.Bootstrap()
	port := config.GetPort()
	r.Run(fmt.Sprintf(":%d", port))
}
