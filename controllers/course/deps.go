package controllers

import (
	"github.com/sanjanathakeri/courseappone/payment"
	"github.com/sanjanathakeri/courseappone/storage"
)

// External service clients, assigned at startup in main. Kept as package
// variables so tests can substitute fakes without live network calls.
var (
	PaymentGateway payment.Gateway
	ImageStore     storage.Uploader
)
