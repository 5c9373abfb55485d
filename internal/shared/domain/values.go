package domain

import (
	"errors"
	"fmt"
)

// Amount représente un montant de ventes avec garanties d'invariants.
// Le dataset AAL est mono-devise (AUD), donc pas de champ currency.
type Amount struct {
	value float64
}

// NewAmount crée une nouvelle instance de Amount avec validation
func NewAmount(value float64) (Amount, error) {
	if value < 0 {
		return Amount{}, errors.New("amount cannot be negative")
	}
	return Amount{value: value}, nil
}

// MustNewAmount crée un Amount en paniquant si invalide
func MustNewAmount(value float64) Amount {
	a, err := NewAmount(value)
	if err != nil {
		panic(fmt.Sprintf("invalid amount: %v", err))
	}
	return a
}

// Value retourne le montant
func (a Amount) Value() float64 {
	return a.value
}

// Add additionne deux montants
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value + other.value}
}

// IsZero vérifie si le montant est zéro
func (a Amount) IsZero() bool {
	return a.value == 0
}

// Quantity représente un nombre d'unités vendues avec validation
type Quantity struct {
	value int
}

// NewQuantity crée une nouvelle instance de Quantity avec validation
func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, errors.New("quantity cannot be negative")
	}
	return Quantity{value: value}, nil
}

// MustNewQuantity crée une Quantity en paniquant si invalide
func MustNewQuantity(value int) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(fmt.Sprintf("invalid quantity: %v", err))
	}
	return q
}

// Value retourne la valeur
func (q Quantity) Value() int {
	return q.value
}

// Add additionne deux quantités
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

// IsZero vérifie si la quantité est nulle
func (q Quantity) IsZero() bool {
	return q.value == 0
}
