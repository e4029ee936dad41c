// Command seed загружает буксиры и заказы из CSV напрямую в базу,
// теми же правилами, что и эндпоинты /upload.
package main

func main() {
	Execute()
}
