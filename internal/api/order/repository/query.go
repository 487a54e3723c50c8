package orderRepository

const (
	queryCreateOrder = `
INSERT INTO orders (id, user_id, total_price, address, city, postal_code, country, status, payment_method, payment_status, created_at)
VALUES (:id, :user_id, :total_price, :address, :city, :postal_code, :country, :status, :payment_method, :payment_status, :created_at)`

	queryCreateOrderItem = `
INSERT INTO order_items (id, order_id, product_id, name, qty, price)
VALUES (:id, :order_id, :product_id, :name, :qty, :price)`

	queryGetOrderByID = `
SELECT id, user_id, total_price, address, city, postal_code, country, status, payment_method, payment_status, transaction_id, created_at, updated_at
FROM orders
    WHERE id = :id`

	queryListItemsByOrder = `
SELECT id, order_id, product_id, name, qty, price
FROM order_items
    WHERE order_id = :order_id`

	queryListOrdersByUser = `
SELECT id, user_id, total_price, address, city, postal_code, country, status, payment_method, payment_status, transaction_id, created_at, updated_at
FROM orders
    WHERE user_id = :user_id
ORDER BY created_at DESC`

	queryListAllOrders = `
SELECT o.id, o.user_id, o.total_price, o.address, o.city, o.postal_code, o.country, o.status, o.payment_method, o.payment_status, o.transaction_id, o.created_at, o.updated_at,
       u.name AS user_name, u.email AS user_email
FROM orders o
JOIN users u ON u.id = o.user_id
ORDER BY o.created_at DESC`

	queryUpdateOrderStatus = `
		UPDATE orders
SET status = :status, updated_at = :updated_at
WHERE id = :id`

	queryMarkOrderPaid = `
		UPDATE orders
SET payment_status = :payment_status, status = :status, transaction_id = :transaction_id, updated_at = :updated_at
WHERE id = :id`
)
