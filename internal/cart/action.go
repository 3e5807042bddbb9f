package cart

import (
	types "freshcart/internal/types/cart"
)

// ActionKind - тип перехода корзины
type ActionKind int

const (
	ActionAdd ActionKind = iota + 1
	ActionRemove
	ActionUpdateQuantity
	ActionClear
)

func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return "add"
	case ActionRemove:
		return "remove"
	case ActionUpdateQuantity:
		return "update_quantity"
	case ActionClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Action - переход корзины вместе с его данными.
// Item используется ActionAdd, ID - ActionRemove и ActionUpdateQuantity, Delta - ActionUpdateQuantity.
type Action struct {
	Kind  ActionKind
	Item  types.CartItem
	ID    int
	Delta int
}

// Add - добавить товар; quantity < 1 считается за 1
func Add(item types.NewItem, quantity int) Action {
	if quantity < 1 {
		quantity = 1
	}

	return Action{Kind: ActionAdd, Item: item.WithQuantity(quantity)}
}

func Remove(id int) Action {
	return Action{Kind: ActionRemove, ID: id}
}

func UpdateQuantity(id int, delta int) Action {
	return Action{Kind: ActionUpdateQuantity, ID: id, Delta: delta}
}

func Clear() Action {
	return Action{Kind: ActionClear}
}

// Reduce вычисляет новый список позиций. Входной срез не изменяется.
// Количество в ActionAdd меньше 1 считается за 1, как и в Add.
// Неизвестный тип перехода возвращает копию исходного списка.
func Reduce(items []types.CartItem, action Action) []types.CartItem {
	switch action.Kind {
	case ActionAdd:
		added := action.Item
		added.Quantity = max(1, added.Quantity)

		next := clone(items)
		for i := range next {
			if next[i].ID == added.ID {
				// name, price и прочие поля остаются от первого добавления
				next[i].Quantity += added.Quantity
				return next
			}
		}

		return append(next, added)

	case ActionRemove:
		next := make([]types.CartItem, 0, len(items))
		for _, item := range items {
			if item.ID != action.ID {
				next = append(next, item)
			}
		}

		return next

	case ActionUpdateQuantity:
		next := clone(items)
		for i := range next {
			if next[i].ID == action.ID {
				next[i].Quantity = max(1, next[i].Quantity+action.Delta)
				break
			}
		}

		return next

	case ActionClear:
		return []types.CartItem{}

	default:
		return clone(items)
	}
}

func clone(items []types.CartItem) []types.CartItem {
	next := make([]types.CartItem, len(items), len(items)+1)
	copy(next, items)

	return next
}
