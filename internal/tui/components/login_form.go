package components

import "github.com/dcastillo/studia/internal/api"

// NewLoginForm creates the sign-in dialog.
func NewLoginForm() *Form {
	return NewForm("Inicia sesión", false,
		TextField("email", "Correo", "tu@correo.com", ""),
		PasswordField("password", "Contraseña"),
	)
}

// CredentialsFromForm builds and validates the login request.
func CredentialsFromForm(f *Form) (api.Credentials, error) {
	f.ClearErrors()
	creds := api.Credentials{
		Email:    f.Value("email"),
		Password: f.Value("password"),
	}
	if err := api.Validate(creds); err != nil {
		f.ApplyValidation(err)
		return creds, err
	}
	return creds, nil
}
