package authapimodels

import "errors"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email non renseigné")
	}
	if r.Password == "" {
		return errors.New("mot de passe non renseigné")
	}
	return nil
}

type JWTResponse struct {
	AccessToken        string `json:"access_token"`
	RefreshToken       string `json:"refresh_token"`
	MustChangePassword bool   `json:"must_change_password"`
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return errors.New("refresh token non renseigné")
	}
	return nil
}

// RegisterRequest est l'auto-inscription : l'employé fournit son matricule,
// un compte lui est créé avec un mot de passe temporaire envoyé par email.
type RegisterRequest struct {
	Matricule string `json:"matricule"`
	Email     string `json:"email"`
}

func (r RegisterRequest) Validate() error {
	if r.Matricule == "" {
		return errors.New("matricule non renseigné")
	}
	if r.Email == "" {
		return errors.New("email non renseigné")
	}
	return nil
}

type PasswordChange struct {
	CurrentPassword string `json:"current_password"` // Mot de passe actuel
	NewPassword     string `json:"new_password"`     // Nouveau mot de passe
	ConfirmPassword string `json:"confirm_password"` // Confirmation du nouveau mot de passe
}

func (r PasswordChange) Validate() error {
	if r.CurrentPassword == "" {
		return errors.New("mot de passe actuel non renseigné")
	}
	if len(r.NewPassword) < 8 {
		return errors.New("le nouveau mot de passe doit contenir au moins 8 caractères")
	}
	if r.NewPassword != r.ConfirmPassword {
		return errors.New("la confirmation ne correspond pas au nouveau mot de passe")
	}
	return nil
}

type UserView struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Nom                string `json:"nom"`
	Prenom             string `json:"prenom"`
	Role               string `json:"role"`
	RoleLabel          string `json:"role_label"`
	Matricule          string `json:"matricule,omitempty"`
	MustChangePassword bool   `json:"must_change_password"`
}
