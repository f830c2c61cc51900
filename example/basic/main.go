// Lists the hosts visible to the configured account. Connection details
// come from the environment, optionally seeded from a .env file:
//
//	ZABBIX_URL=http://localhost/zabbix
//	ZABBIX_USER=Admin
//	ZABBIX_PASSWORD=zabbix
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/riftbit/zapix"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	zapix.SetLogger(zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger())

	client := zapix.NewClient(os.Getenv("ZABBIX_URL"), zapix.WithTimeout(10*time.Second))
	if err := client.Login(os.Getenv("ZABBIX_USER"), os.Getenv("ZABBIX_PASSWORD")); err != nil {
		fmt.Fprintln(os.Stderr, "login:", err)
		os.Exit(1)
	}

	err := client.Session(func(c *zapix.Client) error {
		hosts, err := c.Object("host").Method("get").CallNamed(zapix.Params{
			"output": []string{"hostid", "host"},
		})
		if err != nil {
			return err
		}
		list, _ := hosts.([]interface{})
		for _, h := range list {
			fmt.Println(h)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "session:", err)
		os.Exit(1)
	}
}
