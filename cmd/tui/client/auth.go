package client

import "net/http"

type Session struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

func (c *Client) Login(email, password string) (*Session, error) {
	body := map[string]string{"email": email, "password": password}

	var session Session
	if err := c.write(http.MethodPost, "/api/auth/login", body, &session); err != nil {
		return nil, err
	}

	c.SetToken(session.AccessToken)
	return &session, nil
}

func (c *Client) Register(email, name, password string) (*Session, error) {
	body := map[string]string{"email": email, "name": name, "password": password}

	var session Session
	if err := c.write(http.MethodPost, "/api/auth/register", body, &session); err != nil {
		return nil, err
	}

	c.SetToken(session.AccessToken)
	return &session, nil
}

type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (c *Client) Me() (*Profile, error) {
	var profile Profile
	if err := c.read("me", "/api/auth/me", &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
