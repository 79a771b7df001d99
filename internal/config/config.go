package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Server struct {
	Addr         string `json:"addr"`
	HeaderTTL    string `json:"headerTtl"`
	FetchTimeout string `json:"fetchTimeout"`
}

type Probe struct {
	ShowSpinner  bool   `json:"showSpinner"`
	Spinner      string `json:"spinner"`
	FetchTimeout string `json:"fetchTimeout"`
	Player       string `json:"player"`
	Output       string `json:"output"`
}

type Data struct {
	Server Server `json:"server"`
	Probe  Probe  `json:"probe"`
}

func InitData() Data {
	return Data{
		Server: Server{
			Addr:         ":8181",
			HeaderTTL:    "60s",
			FetchTimeout: "10s",
		},
		Probe: Probe{
			ShowSpinner:  true,
			Spinner:      "dot",
			FetchTimeout: "10s",
			Player:       "mpv",
			Output:       "",
		},
	}
}

// Get loads config.json from the working directory, creating it with
// defaults on first run.
func Get() (*Data, error) {
	var data Data

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	p := filepath.Join(wd, "config.json")

	_, err = os.Stat(p)

	if os.IsNotExist(err) {
		data = InitData()

		b, err := json.MarshalIndent(data, "", " ")
		if err != nil {
			return nil, err
		}

		f, err := os.Create(p)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if _, err := f.Write(b); err != nil {
			return nil, err
		}
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(".")

		err := viper.ReadInConfig()
		if err != nil {
			return nil, err
		}
		viper.Unmarshal(&data)
	}

	return &data, nil
}
