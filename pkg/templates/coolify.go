// pkg/templates/coolify.go

package templates

import (
	"text/template"
)

// CoolifyComposeTemplate renders the generated docker-compose.yml: one
// service, one external network, four named volumes. Secret fields are
// template data, never placeholder text, and missing keys are errors so a
// template drift cannot produce a manifest with unsubstituted secrets.
var CoolifyComposeTemplate = template.Must(template.New("coolify-compose").
	Option("missingkey=error").
	Parse(`services:
  coolify:
    image: {{ .Image }}
    container_name: {{ .ContainerName }}
    restart: always
    ports:
      - "{{ .HostPort }}:8000"
    environment:
      APP_ID: "{{ .AppID }}"
      SECRET_KEY: "{{ .SecretKey }}"
    volumes:
      - /var/run/docker.sock:/var/run/docker.sock
      - coolify-db:/app/db
      - coolify-redis:/data
      - coolify-backups:/app/backups
      - coolify-ssh:/root/.ssh
    networks:
      - {{ .NetworkName }}

networks:
  {{ .NetworkName }}:
    external: true

volumes:
  coolify-db:
  coolify-redis:
  coolify-backups:
  coolify-ssh:
`))

// CoolifyUnitTemplate renders the systemd unit bound to the generated
// compose manifest. TimeoutStartSec=0 because image pulls on a cold host
// can take minutes; restart storms are bounded by StartLimit*.
var CoolifyUnitTemplate = template.Must(template.New("coolify-unit").
	Option("missingkey=error").
	Parse(`[Unit]
Description=Coolify self-hosted platform
Documentation=https://coolify.io/docs
Requires=docker.service
After=docker.service network-online.target
StartLimitIntervalSec=60
StartLimitBurst=3

[Service]
RemainAfterExit=yes
WorkingDirectory={{ .InstallDir }}
ExecStart={{ .ComposeBin }} -f {{ .ComposeFile }} up -d
ExecStop={{ .ComposeBin }} -f {{ .ComposeFile }} down
Restart=on-failure
RestartSec=5
TimeoutStartSec=0

[Install]
WantedBy=multi-user.target
`))

// CoolifyManageScriptTemplate renders the standalone management wrapper.
// The script is a plain dispatch over systemctl and compose so operators
// without this tool on PATH can still drive the service.
var CoolifyManageScriptTemplate = template.Must(template.New("coolify-manage").
	Option("missingkey=error").
	Parse(`#!/usr/bin/env bash
# Generated by coolifyctl. Manages the Coolify service.

COMPOSE_FILE="{{ .ComposeFile }}"
SERVICE="{{ .ServiceName }}"

usage() {
    echo "Usage: $0 {start|stop|restart|status|logs|update}"
    exit 1
}

case "$1" in
    start)
        systemctl start "$SERVICE"
        ;;
    stop)
        systemctl stop "$SERVICE"
        ;;
    restart)
        systemctl restart "$SERVICE"
        ;;
    status)
        systemctl status "$SERVICE"
        ;;
    logs)
        {{ .ComposeBin }} -f "$COMPOSE_FILE" logs -f
        ;;
    update)
        {{ .ComposeBin }} -f "$COMPOSE_FILE" pull
        {{ .ComposeBin }} -f "$COMPOSE_FILE" up -d
        ;;
    *)
        usage
        ;;
esac
`))
