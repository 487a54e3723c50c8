package cartRepository

const (
	queryUpsertCartItem = `
INSERT INTO cart_items (user_id, product_id, quantity, created_at)
VALUES (:user_id, :product_id, :quantity, :created_at)
ON CONFLICT (user_id, product_id)
DO UPDATE SET quantity = cart_items.quantity + :quantity, updated_at = :created_at`

	queryListCartByUser = `
SELECT c.product_id, p.name, p.image, p.price, p.discount, p.stock, c.quantity
FROM cart_items c
JOIN products p ON p.id = c.product_id
    WHERE c.user_id = :user_id
ORDER BY c.created_at ASC`

	queryDeleteCartItem = `
DELETE FROM cart_items WHERE user_id = :user_id AND product_id = :product_id`

	queryAddWishlistItem = `
INSERT INTO wishlist_items (user_id, product_id, created_at)
VALUES (:user_id, :product_id, :created_at)
ON CONFLICT (user_id, product_id) DO NOTHING`

	queryListWishlistByUser = `
SELECT w.product_id, p.name, p.image, p.price, p.discount, p.rating
FROM wishlist_items w
JOIN products p ON p.id = w.product_id
    WHERE w.user_id = :user_id
ORDER BY w.created_at DESC`

	queryDeleteWishlistItem = `
DELETE FROM wishlist_items WHERE user_id = :user_id AND product_id = :product_id`
)
