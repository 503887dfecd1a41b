package models

// Account - гидрированный пользователь с ролевым расширением.
// Вместо динамического сужения по тегу роли ("'subscriptionPlan' in user")
// ролевые данные лежат в явных вариантах: заполнен ровно один из двух.
type Account struct {
	User     User
	Provider *Provider
	Customer *Customer
}

// IsProvider сообщает, является ли аккаунт провайдером
func (a *Account) IsProvider() bool {
	return a.User.Role == UserRoleProvider && a.Provider != nil
}

// IsCustomer сообщает, является ли аккаунт клиентом
func (a *Account) IsCustomer() bool {
	return a.User.Role == UserRoleCustomer && a.Customer != nil
}
