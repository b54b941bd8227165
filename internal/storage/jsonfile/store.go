// Package jsonfile persists the whole point-of-sale dataset as a single
// JSON document on disk. Every mutation is a full read-modify-write cycle
// over that document.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mvergaraz/puntoventa/internal/model"
)

// Document is the root object of the backing file. It always carries
// exactly three collections, even when empty.
type Document struct {
	Products  []model.Product  `json:"productos"`
	Customers []model.Customer `json:"clientes"`
	Sales     []model.Sale     `json:"ventas"`
}

// Store owns read/write access to the document file.
//
// The mutex serializes each individual read-modify-write cycle so the
// process does not corrupt its own file. It deliberately does not span
// multi-cycle workflows such as the sale stock check/debit sequence.
type Store struct {
	mu   sync.Mutex
	path string
}

// New opens a store over the given file path, creating the file with an
// empty document when it does not exist yet.
func New(path string) (*Store, error) {
	s := &Store{path: path}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(Document{}); err != nil {
			return nil, fmt.Errorf("initialize document: %w", err)
		}
	}

	return s, nil
}

// Load reads the whole document. A missing or unparsable file is treated
// as empty: a fresh document is persisted immediately and returned, and
// no error is surfaced for the corruption itself.
func (s *Store) Load() (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Save rewrites the whole document file.
func (s *Store) Save(doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// load reads the document without locking. Callers hold s.mu.
func (s *Store) load() (Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return s.reset()
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return s.reset()
	}

	return doc, nil
}

// reset self-heals a missing or corrupted file by persisting a fresh
// empty document.
func (s *Store) reset() (Document, error) {
	doc := Document{}
	if err := s.save(doc); err != nil {
		return doc, fmt.Errorf("reset document: %w", err)
	}
	return doc, nil
}

// save rewrites the file without locking. Callers hold s.mu. Nil
// collections are normalized so the file always contains three arrays.
func (s *Store) save(doc Document) error {
	if doc.Products == nil {
		doc.Products = []model.Product{}
	}
	if doc.Customers == nil {
		doc.Customers = []model.Customer{}
	}
	if doc.Sales == nil {
		doc.Sales = []model.Sale{}
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.WriteFile(s.path, raw, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}

	return nil
}

// ListProducts returns every product in storage order.
func (s *Store) ListProducts() ([]model.Product, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Products, nil
}

// GetProductByID returns the product with the given id. Absence is
// signaled through the boolean, not an error.
func (s *Store) GetProductByID(id string) (model.Product, bool, error) {
	doc, err := s.Load()
	if err != nil {
		return model.Product{}, false, err
	}

	for _, p := range doc.Products {
		if p.ID == id {
			return p, true, nil
		}
	}
	return model.Product{}, false, nil
}

// InsertProduct appends a product to the collection.
func (s *Store) InsertProduct(p model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Products = append(doc.Products, p)
	return s.save(doc)
}

// UpdateProductByID replaces the stored product, carrying over the
// identifier and original creation timestamp. Returns false when the id
// is absent.
func (s *Store) UpdateProductByID(id string, p model.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i, existing := range doc.Products {
		if existing.ID == id {
			p.ID = id
			p.CreatedAt = existing.CreatedAt
			doc.Products[i] = p
			return true, s.save(doc)
		}
	}
	return false, nil
}

// DeleteProductByID removes the product with the given id.
func (s *Store) DeleteProductByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i, p := range doc.Products {
		if p.ID == id {
			doc.Products = append(doc.Products[:i], doc.Products[i+1:]...)
			return true, s.save(doc)
		}
	}
	return false, nil
}

// DecrementStock subtracts qty from the product's stock field. There is
// no floor at zero: stock may go negative when callers debit more than
// they checked for. Returns false when the product is absent.
func (s *Store) DecrementStock(productID string, qty int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i := range doc.Products {
		if doc.Products[i].ID == productID {
			doc.Products[i].Stock -= qty
			return true, s.save(doc)
		}
	}
	return false, nil
}

// ListCustomers returns every customer in storage order.
func (s *Store) ListCustomers() ([]model.Customer, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Customers, nil
}

// GetCustomerByID returns the customer with the given id.
func (s *Store) GetCustomerByID(id string) (model.Customer, bool, error) {
	doc, err := s.Load()
	if err != nil {
		return model.Customer{}, false, err
	}

	for _, c := range doc.Customers {
		if c.ID == id {
			return c, true, nil
		}
	}
	return model.Customer{}, false, nil
}

// InsertCustomer appends a customer to the collection.
func (s *Store) InsertCustomer(c model.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Customers = append(doc.Customers, c)
	return s.save(doc)
}

// UpdateCustomerByID replaces the stored customer, carrying over the
// identifier and original registration timestamp.
func (s *Store) UpdateCustomerByID(id string, c model.Customer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i, existing := range doc.Customers {
		if existing.ID == id {
			c.ID = id
			c.RegisteredAt = existing.RegisteredAt
			doc.Customers[i] = c
			return true, s.save(doc)
		}
	}
	return false, nil
}

// DeleteCustomerByID removes the customer with the given id.
func (s *Store) DeleteCustomerByID(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	for i, c := range doc.Customers {
		if c.ID == id {
			doc.Customers = append(doc.Customers[:i], doc.Customers[i+1:]...)
			return true, s.save(doc)
		}
	}
	return false, nil
}

// ListSales returns every sale in storage order.
func (s *Store) ListSales() ([]model.Sale, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}
	return doc.Sales, nil
}

// GetSaleByID returns the sale with the given id.
func (s *Store) GetSaleByID(id string) (model.Sale, bool, error) {
	doc, err := s.Load()
	if err != nil {
		return model.Sale{}, false, err
	}

	for _, v := range doc.Sales {
		if v.ID == id {
			return v, true, nil
		}
	}
	return model.Sale{}, false, nil
}

// InsertSale appends a sale to the collection.
func (s *Store) InsertSale(v model.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	doc.Sales = append(doc.Sales, v)
	return s.save(doc)
}

// ListSalesByCustomer returns the customer's sales preserving storage
// order.
func (s *Store) ListSalesByCustomer(customerID string) ([]model.Sale, error) {
	doc, err := s.Load()
	if err != nil {
		return nil, err
	}

	sales := make([]model.Sale, 0)
	for _, v := range doc.Sales {
		if v.CustomerID == customerID {
			sales = append(sales, v)
		}
	}
	return sales, nil
}
