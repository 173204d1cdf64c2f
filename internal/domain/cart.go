package domain

// CartItem pairs a product with the quantity chosen by the shopper.
// An item with quantity <= 0 never exists inside a cart: the transitions
// below remove it instead of storing it at zero.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartState is the whole cart: line items in insertion order (unique by
// product code) plus the sidebar visibility flag. Transitions never mutate
// a state in place; they always return a fresh value.
type CartState struct {
	Items  []CartItem `json:"items"`
	IsOpen bool       `json:"isOpen"`
}

type CartActionType string

const (
	ActionAddItem        CartActionType = "ADD_ITEM"
	ActionRemoveItem     CartActionType = "REMOVE_ITEM"
	ActionUpdateQuantity CartActionType = "UPDATE_QUANTITY"
	ActionClearCart      CartActionType = "CLEAR_CART"
	ActionToggleCart     CartActionType = "TOGGLE_CART"
	ActionCloseCart      CartActionType = "CLOSE_CART"
)

// CartAction carries one cart transition. Which fields matter depends on
// Type: AddItem reads Product, RemoveItem reads ProductCode, UpdateQuantity
// reads ProductCode and Quantity, the rest take no payload.
type CartAction struct {
	Type        CartActionType
	Product     Product
	ProductCode string
	Quantity    int
}

// Reduce applies an action to a state. It is total: unknown action types
// and unmatched product codes leave the state untouched, nothing fails.
func Reduce(state CartState, a CartAction) CartState {
	switch a.Type {
	case ActionAddItem:
		return AddItem(state, a.Product)
	case ActionRemoveItem:
		return RemoveItem(state, a.ProductCode)
	case ActionUpdateQuantity:
		return UpdateQuantity(state, a.ProductCode, a.Quantity)
	case ActionClearCart:
		return ClearCart(state)
	case ActionToggleCart:
		return ToggleCart(state)
	case ActionCloseCart:
		return CloseCart(state)
	default:
		return state
	}
}

// AddItem increments the quantity of an existing line, keeping its position,
// or appends a new line with quantity 1. Stock is not checked here.
func AddItem(state CartState, p Product) CartState {
	for i, it := range state.Items {
		if it.Product.Code == p.Code {
			items := copyItems(state.Items)
			items[i].Quantity++
			return CartState{Items: items, IsOpen: state.IsOpen}
		}
	}
	items := copyItems(state.Items)
	items = append(items, CartItem{Product: p, Quantity: 1})
	return CartState{Items: items, IsOpen: state.IsOpen}
}

// RemoveItem drops the line with the given product code. Unknown codes are
// a no-op.
func RemoveItem(state CartState, productCode string) CartState {
	idx := -1
	for i, it := range state.Items {
		if it.Product.Code == productCode {
			idx = i
			break
		}
	}
	if idx < 0 {
		return state
	}
	items := make([]CartItem, 0, len(state.Items)-1)
	items = append(items, state.Items[:idx]...)
	items = append(items, state.Items[idx+1:]...)
	return CartState{Items: items, IsOpen: state.IsOpen}
}

// UpdateQuantity sets a line's quantity verbatim. Zero or negative removes
// the line; unknown codes are a no-op.
func UpdateQuantity(state CartState, productCode string, quantity int) CartState {
	if quantity <= 0 {
		return RemoveItem(state, productCode)
	}
	for i, it := range state.Items {
		if it.Product.Code == productCode {
			items := copyItems(state.Items)
			items[i].Quantity = quantity
			return CartState{Items: items, IsOpen: state.IsOpen}
		}
	}
	return state
}

// ClearCart empties the line items; the visibility flag is untouched.
func ClearCart(state CartState) CartState {
	return CartState{Items: []CartItem{}, IsOpen: state.IsOpen}
}

func ToggleCart(state CartState) CartState {
	return CartState{Items: state.Items, IsOpen: !state.IsOpen}
}

func CloseCart(state CartState) CartState {
	return CartState{Items: state.Items, IsOpen: false}
}

func copyItems(items []CartItem) []CartItem {
	out := make([]CartItem, len(items))
	copy(out, items)
	return out
}
