package service

import (
	"context"

	"github.com/ahstack/shopchat/internal/llm"
	"github.com/ahstack/shopchat/internal/models"
)

// fakeLLM is a scripted llm.Client. It records the last request so tests can
// inspect exactly what the prompt contained.
type fakeLLM struct {
	reply string
	err   error

	lastMessages []llm.Message
	lastOptions  llm.Options
	calls        int
}

func (f *fakeLLM) Chat(_ context.Context, messages []llm.Message, opts llm.Options) (string, error) {
	f.calls++
	f.lastMessages = messages
	f.lastOptions = opts
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeCatalog serves a fixed snapshot, optionally failing the first n calls.
type fakeCatalog struct {
	products  []models.Product
	err       error
	failFirst int
	calls     int
}

func (f *fakeCatalog) FetchAll(context.Context) ([]models.Product, error) {
	f.calls++
	if f.err != nil && (f.failFirst == 0 || f.calls <= f.failFirst) {
		return nil, f.err
	}
	return f.products, nil
}

// fakeIntents returns a fixed extraction result.
type fakeIntents struct {
	intent models.Intent
	err    error
}

func (f *fakeIntents) Extract(context.Context, string) (models.Intent, error) {
	return f.intent, f.err
}

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: 1, Title: "iPhone 9", Description: "An apple mobile which is nothing like apple", Price: 549, Rating: 4.69, Stock: 94, Brand: "Apple", Category: "smartphones", WarrantyInformation: "1 year warranty", ShippingInformation: "Ships in 1 month"},
		{ID: 2, Title: "iPhone X", Description: "Model X", Price: 899, Rating: 4.44, Stock: 34, Brand: "Apple", Category: "smartphones"},
		{ID: 3, Title: "Samsung Universe 9", Description: "Galaxy beyond", Price: 1249, Rating: 4.09, Stock: 36, Brand: "Samsung", Category: "smartphones"},
		{ID: 4, Title: "MacBook Pro", Description: "Apple laptop", Price: 1749, Rating: 4.57, Stock: 83, Brand: "Apple", Category: "laptops"},
		{ID: 5, Title: "perfume Oil", Description: "Mega discount fragrance", Price: 13, Rating: 4.26, Stock: 65, Brand: "Impression", Category: "fragrances"},
	}
}
