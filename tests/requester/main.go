package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
)

var address = map[string]any{
	"name":        "John Doe",
	"line1":       "Main st. 1",
	"city":        "Berlin",
	"postal_code": "10115",
	"country":     "DE",
}

// Every shopper puts the same product into a cart and checks out at once.
// With stock N exactly N checkouts must succeed and the rest get 409.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "storefront base url")
	productID := flag.String("product", "poster", "contended product id")
	shoppers := flag.Int("shoppers", 50, "concurrent shoppers")
	flag.Parse()

	var placed, rejected, failed atomic.Int64
	var wg sync.WaitGroup
	for i := range *shoppers {
		owner := fmt.Sprintf("shopper-%d", i)
		if err := do(*baseURL+"/cart/items", owner, map[string]any{"product_id": *productID, "quantity": 1}, nil); err != nil {
			fmt.Println("Ошибка добавления:", owner, err)
			continue
		}
		wg.Go(func() {
			status := 0
			err := do(*baseURL+"/checkout", owner, map[string]any{
				"shipping_address": address,
				"payment_method":   "card",
			}, &status)
			switch {
			case err != nil:
				failed.Add(1)
				fmt.Println("Ошибка запроса:", owner, err)
			case status == http.StatusCreated:
				placed.Add(1)
			case status == http.StatusConflict:
				rejected.Add(1)
			default:
				failed.Add(1)
			}
		})
	}
	wg.Wait()

	fmt.Printf("placed=%d rejected=%d failed=%d\n", placed.Load(), rejected.Load(), failed.Load())
}

func do(url, owner string, payload any, status *int) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", owner)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	fmt.Println("POST", url, owner, "->", resp.Status)
	if status != nil {
		*status = resp.StatusCode
	} else if resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}
